package models

import "time"

// Testimonial roles and feedback subjects are closed enumerations.
var (
	TestimonialRoles    = []string{"Donor", "Receiver", "Relative"}
	TestimonialSubjects = []string{"Website", "Donor", "Experience"}
)

// Testimonial is a piece of user feedback with a 1-5 star rating.
type Testimonial struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	FeedbackFor string    `json:"feedback_for"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}
