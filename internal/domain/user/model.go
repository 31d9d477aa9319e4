package user

// User is the acting principal. Set at login, cleared at logout; the client
// keeps a single current-user slot.
type User struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}
