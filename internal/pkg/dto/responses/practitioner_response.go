package responses

type PractitionerResponse struct {
	ID              string            `json:"id"`
	FullName        string            `json:"full_name"`
	Specialties     []string          `json:"specialties"`
	AverageRating   *float64          `json:"average_rating"`
	Bio             string            `json:"bio,omitempty"`
	Languages       []string          `json:"languages,omitempty"`
	Gender          string            `json:"gender,omitempty"`
	Education       string            `json:"education,omitempty"`
	WorkingHours    map[string]string `json:"working_hours,omitempty"`
	ProfileImageURL string            `json:"profile_image_url,omitempty"`
}

type MatchingResultsResponse struct {
	Recommended *PractitionerResponse  `json:"recommended"`
	Alternates  []PractitionerResponse `json:"alternates"`
}

type AvailabilityResponse struct {
	PractitionerID string   `json:"practitioner_id"`
	Date           string   `json:"date"`
	Slots          []string `json:"slots"`
}
