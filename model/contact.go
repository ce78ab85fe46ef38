package model

type ContactMessage struct {
	Name      string `firestore:"name,omitempty"`
	Email     string `firestore:"email,omitempty"`
	Phone     string `firestore:"phone,omitempty"`
	Subject   string `firestore:"subject,omitempty"`
	Message   string `firestore:"message,omitempty"`
	CreatedAt string `firestore:"createdAt,omitempty"`
}
