package schema

import (
	"encoding/json"
	"time"
)

const TypeActivationCode = "activation_code"

// ActivationCode is the message a downstream mailer consumes to deliver the
// activation code to the user.
type ActivationCode struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (m *ActivationCode) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *ActivationCode) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
