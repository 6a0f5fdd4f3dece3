package persistence

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes save records to bytes
type Codec interface {
	// Format is the configuration name of the codec
	Format() string
	// Ext is the file extension including the dot
	Ext() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// TOMLCodec is the human-editable save format
type TOMLCodec struct{}

func (TOMLCodec) Format() string { return "toml" }
func (TOMLCodec) Ext() string    { return ".toml" }

func (TOMLCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, errors.Wrap(err, "toml encode")
	}
	return buf.Bytes(), nil
}

// Unmarshal ignores keys the target has no field for
func (TOMLCodec) Unmarshal(data []byte, v any) error {
	if _, err := toml.Decode(string(data), v); err != nil {
		return errors.Wrap(err, "toml decode")
	}
	return nil
}

// MsgpackCodec is the compact binary save format
type MsgpackCodec struct{}

func (MsgpackCodec) Format() string { return "msgpack" }
func (MsgpackCodec) Ext() string    { return ".msgpack" }

func (MsgpackCodec) Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "msgpack encode")
	}
	return data, nil
}

func (MsgpackCodec) Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "msgpack decode")
	}
	return nil
}

// CodecFor resolves a codec by format name
func CodecFor(format string) (Codec, error) {
	switch format {
	case "toml", "":
		return TOMLCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	}
	return nil, fmt.Errorf("unknown save format %q", format)
}
