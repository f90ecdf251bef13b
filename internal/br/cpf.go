// Package br provides validation and normalization helpers for Brazilian
// registry data (CPF documents, free-text fields imported from legacy systems).
package br

import "strings"

// NormalizeCPF strips the usual formatting characters ("123.456.789-09")
// and returns the bare 11-digit string. Non-digit characters other than
// '.', '-' and spaces are preserved so validation can reject them.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(len(cpf))
	for _, r := range cpf {
		switch r {
		case '.', '-', ' ':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether cpf is a structurally valid CPF number.
//
// A CPF is 11 digits where the last two are check digits computed from the
// first nine. Sequences of a single repeated digit (e.g. "11111111111")
// pass the check-digit arithmetic but are reserved and therefore rejected.
func ValidCPF(cpf string) bool {
	cpf = NormalizeCPF(cpf)
	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 0; i < len(cpf); i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return false
		}
		if cpf[i] != cpf[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	if checkDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	return checkDigit(cpf, 10) == int(cpf[10]-'0')
}

// checkDigit computes the CPF check digit over the first n digits.
func checkDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
