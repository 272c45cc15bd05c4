package contact

import "time"

// Message is a contact-form submission stored for back-office review
type Message struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	FullName  string    `json:"fullName" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Body      string    `json:"message" db:"message"`
	ID        int64     `json:"id" db:"id"`
}
