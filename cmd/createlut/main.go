// Command createlut precomputes the spectral upsampling tables for a
// chosen gamut. It reads the maximum brightness map (macadam.lut) from
// the working directory and writes spectra.lut, abney.lut and a
// floating point debug image.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kovidgoyal/spectra"
	"github.com/kovidgoyal/spectra/cie"
	"github.com/kovidgoyal/spectra/fit"
	"github.com/kovidgoyal/spectra/lut"
)

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: createlut <resolution> <debug-image> [<gamut>]\nwhere <gamut> is one of sRGB,eRGB,XYZ,ProPhotoRGB,ACES2065_1,ACES_AP1,REC2020")
		os.Exit(1)
	}
	res, err := strconv.Atoi(os.Args[1])
	if err != nil || res < 4 {
		err = fmt.Errorf("bad resolution %q", os.Args[1])
		return
	}
	gamut := cie.XYZ
	if len(os.Args) > 3 {
		gamut = cie.ParseGamut(os.Args[3])
	}

	brightness, err := lut.ReadBrightness("macadam.lut")
	if err != nil {
		err = fmt.Errorf("could not read macadam.lut: %w", err)
		return
	}

	basis := fit.NewBasis(gamut)
	fmt.Print("optimising ")
	table, err := spectra.Run(basis, brightness, spectra.Options{Res: res, Progress: os.Stdout})
	fmt.Println()
	if err != nil {
		return
	}
	err = table.WriteOutputs("spectra.lut", "abney.lut", os.Args[2])
}
