package kvstore

import (
	"os"
	"testing"
	"txkv/test"
)

func TestMain(m *testing.M) {
	test.DisableLogging()
	os.Exit(m.Run())
}
