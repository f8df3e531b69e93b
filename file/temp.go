package file

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/WinCoder/ckcore/fspath"
)

// tempAttempts bounds the collision-retry loop in Temp and TempIn. The
// cap mirrors the retry bound the standard library has historically
// used for temporary-name generation.
const tempAttempts = 10000

// Temp returns a File bound to a fresh candidate name in the system
// temporary directory. The file itself is not created; the name is
// only reserved by choice.
func Temp() *File {
	return TempIn(fspath.New(os.TempDir()))
}

// TempIn returns a File bound to a fresh candidate name under dir. The
// file itself is not created. Candidates carry a random 64-bit hex
// suffix; on collision a new candidate is drawn, up to tempAttempts
// times. After exhaustion the returned File is bound to the empty Path
// and unusable.
func TempIn(dir fspath.Path) *File {
	for i := 0; i < tempAttempts; i++ {
		cand := dir.Join(fmt.Sprintf("tmp%016x", rand.Uint64()))
		if !Exist(cand) {
			return New(cand)
		}
	}
	return New(fspath.Path{})
}
