package clone

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Type tags of the canonical encoding.
const (
	tagNil    byte = 'n'
	tagBool   byte = 'b'
	tagInt    byte = 'i'
	tagUint   byte = 'u'
	tagFloat  byte = 'f'
	tagCmplx  byte = 'c'
	tagString byte = 's'
	tagList   byte = 'l'
	tagMap    byte = 'm'
	tagStruct byte = 'r'
)

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of the canonical
// structure of v.
//
// The encoding covers leaf kinds and values, sequence order, map entries
// (in sorted order, so map iteration order does not matter) and struct
// field names. Container types are not part of the encoding: []int{1} and
// []any{1} share a fingerprint, while int(1) and float64(1) do not. Nil
// slices, maps and pointers encode as nil, distinct from empty ones.
// Pointers are followed.
//
// Channels, functions and unsafe pointers yield [ErrUnsupportedKind].
func Fingerprint(v any) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("clone: init blake2b: %w", err)
	}
	enc := encoder{w: h}
	if err := enc.encode(reflect.ValueOf(v)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

type encoder struct {
	w       io.Writer
	scratch [8]byte
}

func (e *encoder) tag(t byte) {
	e.scratch[0] = t
	e.w.Write(e.scratch[:1])
}

func (e *encoder) u64(n uint64) {
	binary.BigEndian.PutUint64(e.scratch[:], n)
	e.w.Write(e.scratch[:])
}

func (e *encoder) str(s string) {
	e.u64(uint64(len(s)))
	io.WriteString(e.w, s)
}

func (e *encoder) encode(v reflect.Value) error {
	if !v.IsValid() {
		e.tag(tagNil)
		return nil
	}
	switch v.Kind() {
	case reflect.Bool:
		e.tag(tagBool)
		if v.Bool() {
			e.u64(1)
		} else {
			e.u64(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.tag(tagInt)
		e.u64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.tag(tagUint)
		e.u64(v.Uint())
	case reflect.Float32, reflect.Float64:
		e.tag(tagFloat)
		e.u64(math.Float64bits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		e.tag(tagCmplx)
		e.u64(math.Float64bits(real(c)))
		e.u64(math.Float64bits(imag(c)))
	case reflect.String:
		e.tag(tagString)
		e.str(v.String())

	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			e.tag(tagNil)
			return nil
		}
		return e.encode(v.Elem())

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			e.tag(tagNil)
			return nil
		}
		e.tag(tagList)
		e.u64(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			if err := e.encode(v.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Map:
		if v.IsNil() {
			e.tag(tagNil)
			return nil
		}
		return e.encodeMap(v)

	case reflect.Struct:
		t := v.Type()
		e.tag(tagStruct)
		e.u64(uint64(t.NumField()))
		for i := 0; i < t.NumField(); i++ {
			e.str(t.Field(i).Name)
			if err := e.encode(v.Field(i)); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, v.Type())
	}
	return nil
}

// encodeMap writes entries sorted by the encoding of their keys.
func (e *encoder) encodeMap(v reflect.Value) error {
	type entry struct {
		key, val []byte
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var kb, vb bytes.Buffer
		if err := (&encoder{w: &kb}).encode(iter.Key()); err != nil {
			return err
		}
		if err := (&encoder{w: &vb}).encode(iter.Value()); err != nil {
			return err
		}
		entries = append(entries, entry{key: kb.Bytes(), val: vb.Bytes()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].key, entries[j].key) < 0
	})
	e.tag(tagMap)
	e.u64(uint64(len(entries)))
	for _, en := range entries {
		e.w.Write(en.key)
		e.w.Write(en.val)
	}
	return nil
}
