package event

const UserRegisteredDestination string = "user_registered"
const UserRegisteredConsumerNotification string = "user_registered_notification"

// UserRegisteredMessage carries everything the notification module needs to
// send the verification email without querying the database.
type UserRegisteredMessage struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	OtpCode   string `json:"otp_code"`
	OtpToken  string `json:"otp_token"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}
