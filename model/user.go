package model

// Profile is the supplementary user document stored in the "users"
// collection, keyed by the session uid. createdAt is kept as an ISO-8601
// string to match the records the web client writes.
type Profile struct {
	UID       string `firestore:"uid,omitempty"`
	Email     string `firestore:"email,omitempty"`
	Phone     string `firestore:"phone,omitempty"`
	Password  string `firestore:"password,omitempty"` // bcrypt hash
	FirstName string `firestore:"firstName,omitempty"`
	LastName  string `firestore:"lastName,omitempty"`
	FullName  string `firestore:"fullName,omitempty"`
	PhotoURL  string `firestore:"photoURL,omitempty"`
	CreatedAt string `firestore:"createdAt,omitempty"`
}
