package routeros

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Login authenticates as user. It transparently supports both the
// modern (post-6.43) flow, where the first "/login" reply already
// succeeds, and the legacy MD5 challenge-response flow, where the first
// reply carries a "ret" hex challenge that must be answered with a
// second "/login" call.
func (c *Client) Login(user, password string) error {
	_, terminal, err := c.runCommand("/login", map[string]string{
		"name":     user,
		"password": password,
	})
	if err != nil {
		return &LoginError{Err: err}
	}

	challenge, ok := terminal["ret"]
	if !ok {
		return nil
	}

	response, err := challengeResponse(challenge, password)
	if err != nil {
		return &LoginError{Err: err}
	}

	if _, _, err := c.runCommand("/login", map[string]string{
		"name":     user,
		"response": response,
	}); err != nil {
		return &LoginError{Err: err}
	}

	return nil
}

// challengeResponse computes the legacy RouterOS login response for a
// hex-encoded challenge: "00" followed by the lowercase hex MD5 digest
// of a leading 0x00 byte, the UTF-8 password, and the decoded challenge
// bytes.
func challengeResponse(challengeHex, password string) (string, error) {
	if len(challengeHex)%2 != 0 {
		return "", fmt.Errorf("routeros: malformed login challenge %q: odd length", challengeHex)
	}

	challenge, err := hex.DecodeString(challengeHex)
	if err != nil {
		return "", fmt.Errorf("routeros: malformed login challenge %q: %w", challengeHex, err)
	}

	h := md5.New()
	h.Write([]byte{0})
	h.Write([]byte(password))
	h.Write(challenge)
	digest := h.Sum(nil)

	return "00" + hex.EncodeToString(digest), nil
}
