package bbfile

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte, d *document) error {
	return yaml.Unmarshal(data, d)
}

func encodeYAML(d *document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
