package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_PrefixPerKind(t *testing.T) {
	cases := map[Kind]string{
		KindUser:         "usr-",
		KindDoctor:       "doc-",
		KindPatient:      "pat-",
		KindPrescription: "pres-",
		KindMedicine:     "med-",
		KindHealthTip:    "tip-",
		KindNotification: "notif-",
		KindFollowUp:     "follow-",
	}
	for kind, prefix := range cases {
		id := New(kind)
		assert.True(t, strings.HasPrefix(id, prefix), "New(%s) = %q, want prefix %q", kind, id, prefix)
	}
}

func TestNew_TokenTruncation(t *testing.T) {
	assert.Len(t, New(KindUser), len("usr-")+8)
	assert.Len(t, New(KindPrescription), len("pres-")+6)
	assert.Len(t, New(KindHealthTip), len("tip-")+6)

	// Non-display kinds carry a full UUID.
	assert.Len(t, New(KindDoctor), len("doc-")+36)
}

func TestNew_NoDuplicates(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := New(KindDoctor)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier after %d calls: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "doc", Prefix(KindDoctor))
	assert.Equal(t, "follow", Prefix(KindFollowUp))
}
