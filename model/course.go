package model

type Course struct {
	Title            string   `firestore:"title,omitempty"`
	Category         string   `firestore:"category,omitempty"`
	Description      string   `firestore:"description,omitempty"`
	Image            string   `firestore:"image,omitempty"`
	Instructor       string   `firestore:"instructor,omitempty"`
	InstructorID     string   `firestore:"instructorId,omitempty"`
	InstructorImage  string   `firestore:"instructorImage,omitempty"`
	Curriculum       []string `firestore:"curriculum"`
	Requirements     string   `firestore:"requirements"`
	LearningOutcomes string   `firestore:"learningOutcomes"`
	Price            string   `firestore:"price,omitempty"`
	OriginalPrice    string   `firestore:"originalPrice,omitempty"`
	CreatedAt        string   `firestore:"createdAt,omitempty"`
	CreatedBy        string   `firestore:"createdBy,omitempty"`
}
