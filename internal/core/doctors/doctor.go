package doctors

// Doctor is an entry in the site's doctors directory.
// Profile image storage is handled outside this service.
type Doctor struct {
	Name      string `json:"name" db:"name"`
	Specialty string `json:"specialty" db:"specialty"`
	Bio       string `json:"bio" db:"bio"`
	ID        int64  `json:"id" db:"id"`
}
