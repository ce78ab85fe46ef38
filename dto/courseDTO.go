package dto

// AddCourseRequest carries the admin course form. Required-field checks are
// done by the form validator so missing fields come back as a field error
// map, not a binding failure.
type AddCourseRequest struct {
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	Curriculum       []string `json:"curriculum"`
	Requirements     string   `json:"requirements"`
	LearningOutcomes string   `json:"learningOutcomes"`
	Price            string   `json:"price"`
	OriginalPrice    string   `json:"originalPrice"`
}
