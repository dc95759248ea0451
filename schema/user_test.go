package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGreenTitle(t *testing.T) {
	assert.Equal(t, TITLE_BEGINNER, CalculateGreenTitle(0))
	assert.Equal(t, TITLE_BEGINNER, CalculateGreenTitle(99))
	assert.Equal(t, TITLE_ECO_CONSCIOUS, CalculateGreenTitle(100))
	assert.Equal(t, TITLE_ECO_CONSCIOUS, CalculateGreenTitle(249))
	assert.Equal(t, TITLE_GREEN_WARRIOR, CalculateGreenTitle(250))
	assert.Equal(t, TITLE_GREEN_WARRIOR, CalculateGreenTitle(499))
	assert.Equal(t, TITLE_SUSTAINABILITY_HERO, CalculateGreenTitle(500))
	assert.Equal(t, TITLE_SUSTAINABILITY_HERO, CalculateGreenTitle(999))
	assert.Equal(t, TITLE_PLANET_CHAMPION, CalculateGreenTitle(1000))
	assert.Equal(t, TITLE_PLANET_CHAMPION, CalculateGreenTitle(52341))
}

func TestUserCalculateGreenTitle(t *testing.T) {
	u := User{Username: "alice", SustainabilityScore: 250}
	assert.Equal(t, TITLE_GREEN_WARRIOR, u.CalculateGreenTitle())
}

func TestIsElderly(t *testing.T) {
	age := 64
	u := User{Username: "bob", Age: &age}
	assert.False(t, u.IsElderly())

	age = 65
	assert.True(t, u.IsElderly())

	assert.False(t, User{Username: "carol"}.IsElderly())
}

func TestPostTagValid(t *testing.T) {
	for _, tag := range []PostTag{
		TAG_PET_SITTING, TAG_TUTORING, TAG_ELDERLY_COMPANY, TAG_MOWING,
		TAG_MOVING_HELP, TAG_EVENT, TAG_VOLUNTEERING, TAG_OTHER,
	} {
		assert.True(t, tag.Valid(), string(tag))
	}
	assert.False(t, PostTag("OfferHelp").Valid())
	assert.False(t, PostTag("").Valid())
}

func TestPostStatusValid(t *testing.T) {
	for _, status := range []PostStatus{
		POST_OPEN, POST_IN_PROGRESS, POST_COMPLETED, POST_CANCELLED,
	} {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, PostStatus("DONE").Valid())
}
