package dto

type AddBlogRequest struct {
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Content         string   `json:"content"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
	PublishDate     string   `json:"publishDate"`
	IsFeatured      bool     `json:"isFeatured"`
	Author          string   `json:"author"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Slug            string   `json:"slug"`
	ImagePreview    string   `json:"imagePreview"`
	CreatedAt       string   `json:"createdAt"`
	CreatedBy       string   `json:"createdBy"`
}
