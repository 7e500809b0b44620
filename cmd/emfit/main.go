// emfit reads newline-separated numbers from stdin, fits an emission
// model to them with uniform weights, and reports the estimated
// parameters.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tbreslin/go-regimes/emission"
)

func main() {
	modelName := flag.String("model", "t", fmt.Sprintf("model family; one of %s", strings.Join(emission.Names(), ", ")))
	flag.Parse()

	ys := readInput(os.Stdin)

	model, err := emission.New(*modelName, ys, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := model.Fit(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("N %d  model %s\n", len(ys), model.Name())
	for _, p := range model.Params() {
		fmt.Printf("%8s %.6g\n", p.Name, p.Value)
	}
	fmt.Printf("%8s %.6g\n", "loglik", model.LogLikelihood(nil))
	if p, ok := model.(emission.Predictor); ok {
		fmt.Printf("%8s %.6g\n", "mean", p.Predict())
	}
}

func readInput(r io.Reader) (ys []float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		ys = append(ys, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
