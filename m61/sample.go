package m61

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// Sampler draws uniformly distributed residues from a byte stream.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	r   io.Reader
	buf [8]byte
}

// NewSampler returns a Sampler reading from r.
func NewSampler(r io.Reader) *Sampler {
	return &Sampler{r: r}
}

// NewSeededSampler returns a deterministic Sampler keyed by seed. Equal
// seeds produce equal sequences.
func NewSeededSampler(seed []byte) (*Sampler, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, errors.Wrap(err, "m61: keyed prng")
	}
	return NewSampler(prng), nil
}

// NewRandomSampler returns a Sampler keyed from the system entropy source.
func NewRandomSampler() (*Sampler, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, errors.Wrap(err, "m61: prng")
	}
	return NewSampler(prng), nil
}

// Next returns a uniform residue. Words are masked to 61 bits and the single
// out-of-range value 2^61-1 is rejected.
func (s *Sampler) Next() (M61, error) {
	for {
		if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
			return zero, errors.Wrap(err, "m61: read sampler stream")
		}
		if x := binary.LittleEndian.Uint64(s.buf[:]) & Modulus; x != Modulus {
			return M61{x}, nil
		}
	}
}

// Fill overwrites dst with uniform residues.
func (s *Sampler) Fill(dst []M61) error {
	for i := range dst {
		x, err := s.Next()
		if err != nil {
			return err
		}
		dst[i] = x
	}
	return nil
}

// HashToElement maps (domain, msg...) to a residue with SHAKE-256. The
// domain label and every message piece are length prefixed, so moving
// bytes across any piece boundary changes the input.
func HashToElement(domain string, msg ...[]byte) M61 {
	h := sha3.NewShake256()
	writePiece(h, []byte(domain))
	for _, m := range msg {
		writePiece(h, m)
	}
	s := Sampler{r: h}
	// A ShakeHash never runs dry, so Next cannot fail.
	x, _ := s.Next()
	return x
}

func writePiece(w io.Writer, p []byte) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(p)))
	w.Write(lenBuf[:])
	w.Write(p)
}
