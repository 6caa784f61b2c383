package event

import "encoding/json"

// DecodePayload converts an event payload into T. In-process publishers pass
// the typed payload or a pointer to it; anything else, such as a map from a
// replayed JSON event, is round-tripped through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
