package main

import (
	"bufio"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rawbytedev/smallstr"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	input := strings.Repeat("alpha beta gamma delta epsilon zeta\n", 32)
	for i := 0; i < 10000; i++ {
		var s smallstr.Str
		for j := 0; j < 64; j++ {
			s.Append(smallstr.Temp("chunk of payload "))
		}
		s.Slice(6, 256)
		lower := smallstr.ToLower(s.Ref())
		lower.Release()
		s.Release()

		br := bufio.NewReader(strings.NewReader(input))
		for {
			line, err := smallstr.ReadAnyLine(br, '\n')
			if err != nil || line.Empty() {
				break
			}
			line.Release()
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
