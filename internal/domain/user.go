package domain

// User is the account owning characters. Auth and password handling live
// outside this service; only identity and the notification address matter
// here.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
