package spectra

// Inpaint fills every empty bucket by push-pull: build a mip pyramid
// averaging populated finer cells upward, then copy the value of the
// nearest populated ancestor down into each hole. One pass guarantees
// full coverage as long as at least one bucket is populated. The
// pyramid is transient and freed when this returns.
func (b *LSBuffer) Inpaint() {
	type level struct {
		wd, ht int
		pix    [][lsChannels]float32
	}
	levels := []level{{wd: b.Res, ht: b.Res, pix: b.Pix}}

	// push: each coarse cell averages its up-to-4 populated children
	for levels[len(levels)-1].wd > 1 || levels[len(levels)-1].ht > 1 {
		fine := levels[len(levels)-1]
		wd, ht := (fine.wd+1)/2, (fine.ht+1)/2
		coarse := level{wd: wd, ht: ht, pix: make([][lsChannels]float32, wd*ht)}
		for j := range ht {
			for i := range wd {
				var sum [lsChannels]float32
				n := float32(0)
				for dj := range 2 {
					for di := range 2 {
						fi, fj := 2*i+di, 2*j+dj
						if fi >= fine.wd || fj >= fine.ht {
							continue
						}
						p := &fine.pix[fj*fine.wd+fi]
						if p[0]+p[1]+p[2] == 0 {
							continue
						}
						for c := range lsChannels {
							sum[c] += p[c]
						}
						n++
					}
				}
				if n > 0 {
					for c := range lsChannels {
						sum[c] /= n
					}
					coarse.pix[j*wd+i] = sum
				}
			}
		}
		levels = append(levels, coarse)
	}

	// pull: empty fine cells take the first populated ancestor
	for j := range b.Res {
		for i := range b.Res {
			if !b.Empty(j*b.Res + i) {
				continue
			}
			for k := 1; k < len(levels); k++ {
				ci, cj := i>>k, j>>k
				p := &levels[k].pix[cj*levels[k].wd+ci]
				if p[0]+p[1]+p[2] != 0 {
					b.Pix[j*b.Res+i] = *p
					break
				}
			}
		}
	}
}
