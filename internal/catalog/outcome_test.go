package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/library/internal/catalog"
)

func Test_Outcome_OKAndErr(t *testing.T) {
	cases := []struct {
		outcome catalog.Outcome
		ok      bool
		err     error
	}{
		{catalog.Added, true, nil},
		{catalog.Removed, true, nil},
		{catalog.Borrowed, true, nil},
		{catalog.Returned, true, nil},
		{catalog.NotFound, false, catalog.ErrNotFound},
		{catalog.AlreadyBorrowed, false, catalog.ErrAlreadyBorrowed},
		{catalog.NotBorrowed, false, catalog.ErrNotBorrowed},
	}

	for _, tc := range cases {
		t.Run(tc.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.outcome.OK())
			if tc.err == nil {
				assert.NoError(t, tc.outcome.Err())
				return
			}
			assert.True(t, errors.Is(tc.outcome.Err(), tc.err))
		})
	}
}

func Test_Outcome_FailedTransitionLeavesItemUntouched(t *testing.T) {
	c := catalog.New()
	c.Add("Dune", "Herbert", "978-0")
	c.Borrow("978-0")
	before, _ := c.Get("978-0")

	outcome := c.Borrow("978-0")

	assert.ErrorIs(t, outcome.Err(), catalog.ErrAlreadyBorrowed)
	after, _ := c.Get("978-0")
	assert.Equal(t, before, after)
}
