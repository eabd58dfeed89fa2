package clients

import "encoding/base64"

// basicAuth encodes credentials for an HTTP Basic Authorization header
func basicAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
