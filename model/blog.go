package model

// Blog status is one of "draft", "published" or "scheduled".
type Blog struct {
	Title           string   `firestore:"title,omitempty"`
	Category        string   `firestore:"category,omitempty"`
	Content         string   `firestore:"content,omitempty"`
	Tags            []string `firestore:"tags"`
	Status          string   `firestore:"status,omitempty"`
	PublishDate     string   `firestore:"publishDate"`
	IsFeatured      bool     `firestore:"isFeatured"`
	Author          string   `firestore:"author"`
	MetaTitle       string   `firestore:"metaTitle"`
	MetaDescription string   `firestore:"metaDescription"`
	Slug            string   `firestore:"slug"`
	ImagePreview    string   `firestore:"imagePreview"`
	CreatedAt       string   `firestore:"createdAt,omitempty"`
	CreatedBy       string   `firestore:"createdBy,omitempty"`
}
