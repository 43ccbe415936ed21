package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "6281234567890", NormalizePhone("081234567890"))
	assert.Equal(t, "6281234567890", NormalizePhone("+6281234567890"))
	assert.Equal(t, "6281234567890", NormalizePhone("6281234567890"))
	assert.Equal(t, "6281234567890", NormalizePhone("0812-3456-7890"))
}

func TestLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/6281234567890", Link("081234567890", ""))
	assert.Equal(t,
		"https://wa.me/6281234567890?text=Halo+Budi%2C+reservasi+anda+menunggu+pembayaran",
		Link("081234567890", "Halo Budi, reservasi anda menunggu pembayaran"))
}
