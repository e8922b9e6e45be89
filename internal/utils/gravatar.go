package utils

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

// Gravatar image options used for every avatar: 200px, PG rating and the
// "mystery person" fallback.
const (
	gravatarHost    = "//www.gravatar.com/avatar/"
	gravatarSize    = "200"
	gravatarRating  = "pg"
	gravatarDefault = "mm"
)

// GravatarURL returns the protocol-relative Gravatar URL for email.
// The email is trimmed and lower-cased before hashing, as Gravatar requires.
//
//	utils.GravatarURL("Ada@Example.com")
//	// //www.gravatar.com/avatar/<md5>?d=mm&r=pg&s=200
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	query := url.Values{}
	query.Set("s", gravatarSize)
	query.Set("r", gravatarRating)
	query.Set("d", gravatarDefault)

	return gravatarHost + hex.EncodeToString(sum[:]) + "?" + query.Encode()
}
