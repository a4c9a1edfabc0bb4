package bbfile

import "encoding/json"

func decodeJSON(data []byte, d *document) error {
	return json.Unmarshal(data, d)
}

func encodeJSON(d *document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(d, "", "  ")
	}
	return json.Marshal(d)
}
