package handler_test

import (
	"testing"

	"github.com/pkordes/tutor-catalog/backend/testutil"
)

func TestMain(m *testing.M) {
	testutil.Main(m)
}
