// This tool writes a mono 16-bit sine tone at one of the codec sample
// rates, suitable as bvcodec input.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	broadvoice "github.com/signalwire/freeswitch-sub037"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("out", "output.wav", "filename to write to")
	frequency := flagSet.Float64("freq", 440, "frequency in hertz to generate")
	rate := flagSet.Int("rate", 8000, "sample rate, 8000 (bv16) or 16000 (bv32)")
	length := flagSet.Float64("duration", 1, "length in seconds of output file")
	amplitude := flagSet.Float64("amp", 0.5, "peak amplitude relative to full scale")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *rate != broadvoice.BV16.SampleRate() && *rate != broadvoice.BV32.SampleRate() {
		return fmt.Errorf("%w: %d Hz", broadvoice.ErrSampleRate, *rate)
	}

	if *amplitude < 0 || *amplitude > 1 {
		return fmt.Errorf("amplitude %f out of range [0, 1]", *amplitude)
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	sampleRate := float64(*rate)
	numSamples := int(sampleRate * *length)
	pcm := make([]int16, numSamples)

	for i := range pcm {
		fv := *amplitude * math.Sin(float64(i)/sampleRate**frequency*2*math.Pi)
		pcm[i] = int16(math.Round(fv * math.MaxInt16))
	}

	wavOut := broadvoice.NewWAVWriter(file, *rate)
	if err := wavOut.Write(pcm); err != nil {
		return err
	}

	return wavOut.Close()
}
