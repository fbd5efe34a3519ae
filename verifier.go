package argon2

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a malformed PHC string: the byte offset where parsing
// failed to match the expected grammar.
type ParseError struct {
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argon2: malformed encoded hash at byte %d", e.Pos)
}

// InvalidParamsError wraps a ParamError surfaced while decoding a PHC
// string whose m=/t=/p= fields don't satisfy New's constraints.
type InvalidParamsError struct {
	Err error
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("argon2: encoded hash has invalid parameters: %v", e.Err)
}

func (e *InvalidParamsError) Unwrap() error { return e.Err }

// Verifier holds a parsed or freshly computed Argon2 hash in the form
// needed to re-check a password against it: the parameters, salt, tag, and
// optional key/associated data that produced it.
type Verifier struct {
	Params *Params
	Salt   []byte
	Hash   []byte
	Key    []byte
	Data   []byte
}

// NewVerifier hashes password under salt (with the reference 64-byte tag
// length) and returns the resulting Verifier.
func NewVerifier(params *Params, password, salt, key, data []byte) *Verifier {
	out := make([]byte, defaultTagLen)
	Hash(params, out, password, salt, key, data)
	return &Verifier{Params: params, Salt: salt, Hash: out, Key: key, Data: data}
}

// Verify recomputes the tag for password under v's stored parameters and
// salt (with v's own key/associated data) and compares it to v.Hash in
// constant time.
func (v *Verifier) Verify(password []byte) bool {
	out := make([]byte, len(v.Hash))
	Hash(v.Params, out, password, v.Salt, v.Key, v.Data)
	return constantEq(out, v.Hash)
}

// Encode renders v as a PHC string:
//
//	$argon2{d,i}$m=<kib>,t=<passes>,p=<lanes>[,keyid=<b64>][,data=<b64>]$<salt>$<hash>
func (v *Verifier) Encode() string {
	var b strings.Builder
	b.WriteString("$argon2")
	b.WriteString(v.Params.Variant.phcChar())
	fmt.Fprintf(&b, "$m=%d,t=%d,p=%d", v.Params.KiB, v.Params.Passes, v.Params.Lanes)
	if len(v.Key) > 0 {
		b.WriteString(",keyid=")
		b.WriteString(base64.RawStdEncoding.EncodeToString(v.Key))
	}
	if len(v.Data) > 0 {
		b.WriteString(",data=")
		b.WriteString(base64.RawStdEncoding.EncodeToString(v.Data))
	}
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(v.Salt))
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(v.Hash))
	return b.String()
}

func (v Variant) phcChar() string {
	if v == Argon2i {
		return "i"
	}
	return "d"
}

// Decode parses a PHC string produced by Encode (or any conforming
// $argon2{d,i}$... string) back into a Verifier, ready for Verify.
func Decode(encoded string) (*Verifier, error) {
	p := &parser{s: encoded}

	if err := p.expect("$argon2"); err != nil {
		return nil, err
	}
	c, err := p.oneOf("di")
	if err != nil {
		return nil, err
	}
	variant := Argon2d
	if c == 'i' {
		variant = Argon2i
	}

	if err := p.expect("$m="); err != nil {
		return nil, err
	}
	kib, err := p.readUint32()
	if err != nil {
		return nil, err
	}
	if err := p.expect(",t="); err != nil {
		return nil, err
	}
	passes, err := p.readUint32()
	if err != nil {
		return nil, err
	}
	if err := p.expect(",p="); err != nil {
		return nil, err
	}
	lanes, err := p.readUint32()
	if err != nil {
		return nil, err
	}

	var key []byte
	if p.tryExpect(",keyid=") {
		key, err = p.decodeSegment(",$")
		if err != nil {
			return nil, err
		}
	}

	var data []byte
	if p.tryExpect(",data=") {
		data, err = p.decodeSegment("$")
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect("$"); err != nil {
		return nil, err
	}
	salt, err := p.decodeSegment("$")
	if err != nil {
		return nil, err
	}
	if err := p.expect("$"); err != nil {
		return nil, err
	}
	hash, err := p.decodeSegment("")
	if err != nil {
		return nil, err
	}

	params, perr := New(passes, lanes, kib, variant)
	if perr != nil {
		return nil, &InvalidParamsError{Err: perr}
	}

	return &Verifier{Params: params, Salt: salt, Hash: hash, Key: key, Data: data}, nil
}

// constantEq reports whether a and b are equal, in time independent of
// their contents (though not of their lengths).
func constantEq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// parser walks a PHC string left to right; every method either advances
// pos and returns nil/a value, or leaves pos untouched and returns a
// *ParseError anchored at the byte where matching failed.
type parser struct {
	s   string
	pos int
}

func (p *parser) errAt() error { return &ParseError{Pos: p.pos} }

func (p *parser) expect(lit string) error {
	if p.pos+len(lit) > len(p.s) || p.s[p.pos:p.pos+len(lit)] != lit {
		return p.errAt()
	}
	p.pos += len(lit)
	return nil
}

// tryExpect consumes lit if present and reports whether it matched,
// leaving pos untouched otherwise. Used for the two optional PHC fields.
func (p *parser) tryExpect(lit string) bool {
	if p.pos+len(lit) <= len(p.s) && p.s[p.pos:p.pos+len(lit)] == lit {
		p.pos += len(lit)
		return true
	}
	return false
}

func (p *parser) oneOf(chars string) (byte, error) {
	if p.pos < len(p.s) && strings.IndexByte(chars, p.s[p.pos]) >= 0 {
		c := p.s[p.pos]
		p.pos++
		return c, nil
	}
	return 0, p.errAt()
}

func (p *parser) readUint32() (uint32, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errAt()
	}
	n, err := strconv.ParseUint(p.s[start:p.pos], 10, 32)
	if err != nil {
		p.pos = start
		return 0, p.errAt()
	}
	return uint32(n), nil
}

// decodeSegment base64-decodes everything up to (not including) the first
// byte in stops, or to the end of the string if stops is empty or none of
// its bytes appear. An unpadded base64 segment can never have length%4==1;
// that shape is rejected before even trying to decode it.
func (p *parser) decodeSegment(stops string) ([]byte, error) {
	start := p.pos
	end := len(p.s)
	if stops != "" {
		for i := start; i < len(p.s); i++ {
			if strings.IndexByte(stops, p.s[i]) >= 0 {
				end = i
				break
			}
		}
	}
	seg := p.s[start:end]
	if len(seg)%4 == 1 {
		return nil, p.errAt()
	}
	out, err := base64.RawStdEncoding.DecodeString(seg)
	if err != nil {
		return nil, p.errAt()
	}
	p.pos = end
	return out, nil
}
