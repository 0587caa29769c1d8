package pubsub

import (
	"encoding/json"
	"strconv"

	"userhub/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent renders the JSON payload and the routing attributes every provider attaches.
func encodeEvent(event *service.UserEvent) ([]byte, map[string]string, error) {
	if event == nil || event.Type == "" {
		return nil, nil, errors.New("user event must have a type")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode user event")
	}

	attributes := map[string]string{
		"type":    event.Type,
		"user_id": strconv.FormatInt(event.UserID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return body, attributes, nil
}
