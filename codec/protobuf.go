package codec

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Protobuf stores the document as a binary google.protobuf.Value.
// Numbers are carried as doubles, so integers beyond 2^53 lose precision.
type Protobuf struct{}

var _ Codec = Protobuf{}

func (Protobuf) Encode(doc []byte) ([]byte, error) {
	var v structpb.Value
	if err := protojson.Unmarshal(doc, &v); err != nil {
		return nil, err
	}
	return proto.Marshal(&v)
}

func (Protobuf) Decode(b []byte) ([]byte, error) {
	var v structpb.Value
	if err := proto.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return protojson.Marshal(&v)
}
