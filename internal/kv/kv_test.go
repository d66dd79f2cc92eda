package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "player:42:contacts", Key(42, RecordContacts))
	assert.Equal(t, "player:-7:otp", Key(-7, RecordOTP))
}
