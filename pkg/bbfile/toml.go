package bbfile

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

func decodeTOML(data []byte, d *document) error {
	_, err := toml.Decode(string(data), d)
	return err
}

func encodeTOML(d *document) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = "  "
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
