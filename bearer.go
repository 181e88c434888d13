package authx

import "strings"

// ExtractBearerToken returns the token carried by an Authorization header value
// of the form "Bearer <token>". Anything else, including an empty header,
// reports false.
func ExtractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != tokenTypeBearer || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
