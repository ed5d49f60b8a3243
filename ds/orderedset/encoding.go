package orderedset

import (
	"context"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// encodingOptions are passed to serix so that string elements get a length prefix.
var encodingOptions = []serix.Option{
	serix.WithTypeSettings(serix.TypeSettings{}.WithLengthPrefixType(serix.LengthPrefixTypeAsUint16)),
}

// Encode returns the serialized form of the set: the number of elements as uint32 followed by the serix encoding of
// every element in insertion order.
func (r *readOnly[T]) Encode() ([]byte, error) {
	seri := serializer.NewSerializer()

	seri.WriteNum(uint32(r.Size()), func(err error) error {
		return ierrors.Wrap(err, "failed to write set size to serializer")
	})

	for _, element := range r.ToSlice() {
		elementBytes, err := serix.DefaultAPI.Encode(context.Background(), element, encodingOptions...)
		if err != nil {
			return nil, ierrors.Wrapf(err, "failed to encode set element %v", element)
		}

		seri.WriteBytes(elementBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write set element to serializer")
		})
	}

	return seri.Serialize()
}

// Decode parses a set that was serialized with Encode and returns it together with the number of bytes read.
func Decode[T comparable](b []byte) (set OrderedSet[T], bytesRead int, err error) {
	r, bytesRead, err := decodeReadOnly[T](b)
	if err != nil {
		return nil, 0, err
	}

	return &orderedSet[T]{readOnly: r}, bytesRead, nil
}

// DecodeNonEmpty parses a set that was serialized with Encode into a NonEmpty. It fails with ErrEmpty if the encoded
// set has no elements.
func DecodeNonEmpty[T comparable](b []byte) (set NonEmpty[T], bytesRead int, err error) {
	r, bytesRead, err := decodeReadOnly[T](b)
	if err != nil {
		return nil, 0, err
	}

	if r.IsEmpty() {
		return nil, 0, ErrEmpty
	}

	return &nonEmpty[T]{readOnly: r}, bytesRead, nil
}

func decodeReadOnly[T comparable](b []byte) (r *readOnly[T], bytesRead int, err error) {
	var size uint32
	if bytesRead, err = serix.DefaultAPI.Decode(context.Background(), b, &size, encodingOptions...); err != nil {
		return nil, 0, ierrors.Wrap(err, "failed to decode set size")
	}

	r = newReadOnly[T]()
	for i := uint32(0); i < size; i++ {
		var element T
		bytesReadElement, err := serix.DefaultAPI.Decode(context.Background(), b[bytesRead:], &element, encodingOptions...)
		if err != nil {
			return nil, 0, ierrors.Wrapf(err, "failed to decode set element %d", i)
		}
		bytesRead += bytesReadElement

		if !r.add(element) {
			return nil, 0, ierrors.Wrapf(ErrDuplicateElement, "element %v at position %d", element, i)
		}
	}

	return r, bytesRead, nil
}
