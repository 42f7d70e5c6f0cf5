package utils

import "strconv"

// farAway is the proximity score for postal codes that cannot be compared.
const farAway = 999999

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// PostalPrefix returns the leading 5 digits of a postal code.
func PostalPrefix(code string) string {
	d := Digits(code)
	if len(d) > 5 {
		d = d[:5]
	}
	return d
}

// PrefixDistance scores the proximity of two postal codes as the absolute
// difference of their numeric 5-digit prefixes. Codes that are not full
// 8-digit postal codes score farAway so they never pass a proximity cutoff.
func PrefixDistance(a, b string) int {
	da, db := Digits(a), Digits(b)
	if len(da) != 8 || len(db) != 8 {
		return farAway
	}
	pa, err := strconv.Atoi(da[:5])
	if err != nil {
		return farAway
	}
	pb, err := strconv.Atoi(db[:5])
	if err != nil {
		return farAway
	}
	if pa > pb {
		return pa - pb
	}
	return pb - pa
}
