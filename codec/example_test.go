package codec_test

import (
	"fmt"

	"github.com/katalvlaran/cellprof/codec"
	"github.com/katalvlaran/cellprof/profile"
	"github.com/katalvlaran/cellprof/segmented"
)

func ExampleMarshal() {
	p, _ := profile.Constant(0.5, 10)
	sp, _ := segmented.New(p)

	data, _ := codec.Marshal(sp, codec.YAML)
	fmt.Print(string(data))
	// Output:
	// samples:
	//     - 0.5
	//     - 0.5
	//     - 0.5
	//     - 0.5
	//     - 0.5
	//     - 0.5
	//     - 0.5
	//     - 0.5
	//     - 0.5
	//     - 0.5
	// segments:
	//     - id: 11111111-2222-3333-4444-555566667777
	//       start: 0
	//       end: 0
	//       ringSize: 10
	//       locked: false
}
