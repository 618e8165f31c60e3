package memory_test

import (
	"testing"

	"github.com/chalklab/chalkline/pkg/adapters/memory"
	"github.com/chalklab/chalkline/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	tests.RunStateStoreContract(t, memory.New())
}
