package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterOK(t *testing.T) {
	errs := ValidateRegister("alice", "Sup3rSecret")
	assert.False(t, errs.HasErrors())
}

func TestValidateRegisterBadUsername(t *testing.T) {
	for _, username := range []string{"", "ab", "has spaces", "way!bad"} {
		errs := ValidateRegister(username, "Sup3rSecret")
		assert.Contains(t, errs, "username", "username %q should be rejected", username)
	}
}

func TestValidateRegisterWeakPassword(t *testing.T) {
	for _, password := range []string{"short", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		errs := ValidateRegister("alice", password)
		assert.Contains(t, errs, "password", "password %q should be rejected", password)
	}
}

func TestValidateLogin(t *testing.T) {
	assert.False(t, ValidateLogin("alice", "whatever").HasErrors())
	assert.Contains(t, ValidateLogin("", "whatever"), "username")
	assert.Contains(t, ValidateLogin("alice", ""), "password")
}
