package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-leo/aop/advice"
	"github.com/go-leo/aop/aspect"
)

func main() {
	ctx := context.Background()

	say, err := aspect.Wrap(func(_ context.Context, words []string) string {
		return strings.Join(words, " ")
	})
	if err != nil {
		panic(err)
	}
	say.Before().Append(advice.Each(strings.ToUpper))
	say.After().Append(advice.Trace[[]string, string](os.Stdout))
	fmt.Println(say.Call(ctx, []string{"i", "like", "pie"}))

	say.Before().Append(advice.Guard(func(_ context.Context, words []string) bool {
		return len(words) > 1
	}))
	if _, ok := say.Invoke(ctx, []string{"Are you a pirhana?"}); !ok {
		fmt.Println("halted")
	}

	hex, err := aspect.Wrap(func(_ context.Context, x int64) string {
		return strconv.FormatInt(x, 16)
	}, aspect.After[int64, string](advice.Transform[int64](strings.ToUpper)))
	if err != nil {
		panic(err)
	}
	sealed := hex.Sealed()
	fmt.Println(sealed.Call(ctx, 255))

	repeat, err := aspect.WrapAny(strings.Repeat)
	if err != nil {
		panic(err)
	}
	fmt.Println(repeat.Call(ctx, []any{"ab", 3})...)
}
