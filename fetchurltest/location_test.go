package fetchurltest

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/fetchurl"
)

type LocationSuite struct {
	suite.Suite
}

func (suite *LocationSuite) TestLocation() {
	before := fetchurl.CurrentPage()

	suite.Run("Set", func() {
		p := Location(suite, "https://example.com:8443/app")
		suite.Require().NotNil(p)
		suite.Same(p, fetchurl.CurrentPage())
		suite.Equal(fetchurl.Origin{Protocol: "https:", Host: "example.com:8443"}, p.Origin())

		same, err := fetchurl.IsURLSameOrigin("/api")
		suite.NoError(err)
		suite.True(same)
	})

	suite.Same(before, fetchurl.CurrentPage())
}

func (suite *LocationSuite) TestNoLocation() {
	before := fetchurl.CurrentPage()

	suite.Run("Clear", func() {
		Location(suite, "https://example.com/")
		suite.Run("Nested", func() {
			NoLocation(suite)
			suite.Nil(fetchurl.CurrentPage())

			_, err := fetchurl.IsURLSameOrigin("/api")
			suite.ErrorIs(err, fetchurl.ErrNoLocation)
		})

		suite.Require().NotNil(fetchurl.CurrentPage())
		suite.Equal("https://example.com/", fetchurl.CurrentPage().Location())
	})

	suite.Same(before, fetchurl.CurrentPage())
}

func TestLocation(t *testing.T) {
	suite.Run(t, new(LocationSuite))
}
