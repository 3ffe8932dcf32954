package kv

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
)

// maxCookieValue keeps the encoded cookie under the common 4096 byte
// per-cookie browser limit once name and attributes are added.
const maxCookieValue = 3800

// maxInflated bounds what a compressed cookie may expand to on read.
const maxInflated = 64 << 10

// deflatePrefix marks a value stored as raw DEFLATE before base64. The dot
// never appears in the URL-safe base64 alphabet.
const deflatePrefix = "z."

var ErrValueTooLarge = errors.New("value too large for cookie storage")

type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// Cookie binds Storage to the cookies of one HTTP exchange: reads come from
// the request, writes go to the response. Values written during the exchange
// shadow the request cookies so later reads see them.
type Cookie struct {
	w       http.ResponseWriter
	r       *http.Request
	opts    CookieOptions
	written map[string]*string
}

func NewCookie(w http.ResponseWriter, r *http.Request, opts CookieOptions) *Cookie {
	if opts.MaxAge <= 0 {
		opts.MaxAge = 365 * 24 * time.Hour
	}
	return &Cookie{w: w, r: r, opts: opts, written: make(map[string]*string)}
}

func (c *Cookie) GetItem(key string) (string, bool, error) {
	if v, ok := c.written[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}

	ck, err := c.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	raw, err := decodeValue(ck.Value)
	if err != nil {
		return "", false, fmt.Errorf("decode cookie %s: %w", key, err)
	}
	return raw, true, nil
}

func (c *Cookie) SetItem(key, value string) error {
	encoded, err := encodeValue(value)
	if err != nil {
		return fmt.Errorf("encode cookie %s: %w", key, err)
	}
	if len(encoded) > maxCookieValue {
		return fmt.Errorf("%w: %d bytes", ErrValueTooLarge, len(encoded))
	}

	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(c.opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	v := value
	c.written[key] = &v
	return nil
}

func (c *Cookie) RemoveItem(key string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.written[key] = nil
	return nil
}

// encodeValue deflates value and base64 encodes the result.
func encodeValue(value string) (string, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(zw, value); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return deflatePrefix + base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeValue reverses encodeValue. Values without the deflate prefix are
// plain base64 as written by earlier releases.
func decodeValue(encoded string) (string, error) {
	body, compressed := strings.CutPrefix(encoded, deflatePrefix)
	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return "", err
	}
	if !compressed {
		return string(raw), nil
	}

	zr := flate.NewReader(bytes.NewReader(raw))
	defer zr.Close()
	out, err := io.ReadAll(io.LimitReader(zr, maxInflated+1))
	if err != nil {
		return "", err
	}
	if len(out) > maxInflated {
		return "", ErrValueTooLarge
	}
	return string(out), nil
}
