package myaudio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/tphakala/flac"
)

func readFLACInfo(file *os.File) (AudioInfo, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return AudioInfo{}, err
	}

	return AudioInfo{
		SampleRate:   decoder.SampleRate,
		TotalSamples: int(decoder.TotalSamples),
		NumChannels:  decoder.NChannels,
		BitDepth:     decoder.BitsPerSample,
	}, nil
}

// readFLAC decodes the full FLAC stream into mono float32 samples at the
// source sample rate.
func readFLAC(file *os.File) ([]float32, int, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return nil, 0, err
	}

	divisor, err := getAudioDivisor(decoder.BitsPerSample)
	if err != nil {
		return nil, 0, err
	}

	bytesPerSample := decoder.BitsPerSample / 8
	frameStride := bytesPerSample * decoder.NChannels

	var samples []float32
	for {
		frame, err := decoder.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, 0, err
		}

		for i := 0; i+frameStride <= len(frame); i += frameStride {
			// Average all channels of the frame into one mono sample.
			var sum float32
			for ch := range decoder.NChannels {
				offset := i + ch*bytesPerSample
				var sample int32
				switch decoder.BitsPerSample {
				case 16:
					sample = int32(int16(binary.LittleEndian.Uint16(frame[offset:])))
				case 24:
					sample = int32(frame[offset]) | int32(frame[offset+1])<<8 | int32(frame[offset+2])<<16
					// Sign extend from 24 bits.
					if sample&0x800000 != 0 {
						sample |= ^int32(0xFFFFFF)
					}
				case 32:
					sample = int32(binary.LittleEndian.Uint32(frame[offset:]))
				}
				sum += float32(sample) / divisor
			}
			samples = append(samples, sum/float32(decoder.NChannels))
		}
	}

	return samples, decoder.SampleRate, nil
}
