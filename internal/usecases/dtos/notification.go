package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const NotificationTypePayment = "payment"

// NotificationDTO is the webhook body the payment gateway posts on payment
// updates.
type NotificationDTO struct {
	Action string           `json:"action"`
	Type   string           `json:"type"`
	Data   NotificationData `json:"data"`
}

type NotificationData struct {
	ID string `json:"id"`
}

// UnmarshalJSON accepts data.id either as a string or as a bare number; the
// gateway sends numeric payment ids.
func (d *NotificationData) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID interface{} `json:"id"`
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.ID.(type) {
	case string:
		d.ID = v
	case json.Number:
		d.ID = v.String()
	case nil:
		d.ID = ""
	default:
		return fmt.Errorf("unexpected type for data.id: %T", v)
	}
	return nil
}

// Complete reports whether every field the webhook contract requires is
// present.
func (n *NotificationDTO) Complete() bool {
	return n.Action != "" && n.Type != "" && n.Data.ID != ""
}

// NotificationAck is the webhook response body for both success and failure.
type NotificationAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
