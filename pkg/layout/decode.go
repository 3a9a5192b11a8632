package layout

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a layout version file. The candidate-list order downstream
// is the entry order of the file, which encoding/json drops when decoding
// into a map, so objects are walked token by token instead.
func Decode(r io.Reader) (RawTables, error) {
	var raw RawTables

	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return raw, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return raw, err
		}
		key, ok := tok.(string)
		if !ok {
			return raw, fmt.Errorf("layout: unexpected token %v", tok)
		}
		switch key {
		case "initials":
			raw.Initials, err = decodeTable(dec)
		case "vowels":
			raw.Vowels, err = decodeTable(dec)
		case "finals":
			raw.Finals, err = decodeTable(dec)
		case "suffix":
			raw.Suffix, err = decodeTable(dec)
		case "suffixes":
			raw.Suffixes, err = decodeTable(dec)
		default:
			// unknown keys (metadata, key names, diagram data) are skipped
			var skip json.RawMessage
			err = dec.Decode(&skip)
		}
		if err != nil {
			return raw, fmt.Errorf("layout: field %q: %w", key, err)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return raw, err
	}
	return raw, nil
}

// decodeTable walks one identifier→fragment object in file order.
func decodeTable(dec *json.Decoder) ([]Candidate, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var list []Candidate
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected identifier, got %v", tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		text, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("identifier %q: fragment must be a string, got %v", id, tok)
		}
		list = append(list, Candidate{ID: id, Text: text})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return list, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || rune(d) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
