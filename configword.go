package xfft

// PackConfig encodes r as the core's configuration word. From the least
// significant bit the word holds the NFFT field (run-time length only,
// padded to a byte), one FWD_INV bit per channel, then each channel's
// SCALE_SCH field (scaled arithmetic only) sized for NFFT_MAX.
func (d Descriptor) PackConfig(r Request) (Word, error) {
	nfft, err := d.ValidateRequest(r)
	if err != nil {
		return nil, err
	}

	w := NewWord(d.ConfigWidth())
	pos := 0

	if d.RuntimeNFFT {
		w.SetField(0, nfftFieldBits, uint64(nfft))
		pos = nfftFieldBits
	}

	for c := 0; c < d.Channels; c++ {
		w.SetBit(pos+c, uint(r.Channel(c).Direction))
	}

	pos += d.Channels

	if sw := d.scheduleFieldWidth(); sw > 0 {
		for c := 0; c < d.Channels; c++ {
			w.SetField(pos+c*sw, sw, uint64(r.Channel(c).Schedule))
		}
	}

	return w, nil
}

// UnpackConfig decodes a configuration word produced by PackConfig. The
// result always carries per-channel settings.
func (d Descriptor) UnpackConfig(w Word) Request {
	var r Request

	pos := 0

	if d.RuntimeNFFT {
		r.NFFT = int(w.Field(0, nfftFieldBits))
		pos = nfftFieldBits
	}

	r.PerChannel = make([]ChannelConfig, d.Channels)
	for c := range r.PerChannel {
		r.PerChannel[c].Direction = Direction(w.Bit(pos + c))
	}

	pos += d.Channels

	if sw := d.scheduleFieldWidth(); sw > 0 {
		for c := range r.PerChannel {
			r.PerChannel[c].Schedule = Schedule(w.Field(pos+c*sw, sw))
		}
	}

	if len(r.PerChannel) > 0 {
		r.Direction = r.PerChannel[0].Direction
		r.Schedule = r.PerChannel[0].Schedule
	}

	return r
}
