// SPDX-License-Identifier: MIT
// Package: awgwave/store
//
// codec.go - msgpack documents for waves, gates and circuits.
//
// A stream holds two msgpack values: an envelope {kind, version} followed
// by the payload document of that kind. Waveforms and channels are stored
// as their segment lists and rebuilt through the wave constructors, so a
// decoded value has the same (x, y), names and rules as the encoded one.
// Circuits store their diagram; a circuit that was compiled when saved is
// compiled again on decode.

package store

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/awgwave/axis"
	"github.com/katalvlaran/awgwave/circuit"
	"github.com/katalvlaran/awgwave/wave"
	"github.com/vmihailenco/msgpack/v5"
)

// Version is the current format version.
const Version = 1

// Kind names the type of a stored object.
type Kind string

// Stored kinds.
const (
	KindWave     Kind = "wave"
	KindWaveform Kind = "waveform"
	KindChannel  Kind = "qubit_channel"
	KindGate     Kind = "gate"
	KindCircuit  Kind = "circuit"
)

// Ext returns the file extension of k.
func (k Kind) Ext() string {
	switch k {
	case KindGate:
		return ".gate"
	case KindCircuit:
		return ".qckt"
	default:
		return ".wtobj"
	}
}

type envelope struct {
	Kind    Kind `msgpack:"kind"`
	Version int  `msgpack:"version"`
}

type precisionDoc struct {
	TimeDigits int `msgpack:"time_digits"`
	FreqDigits int `msgpack:"freq_digits"`
}

type waveDoc struct {
	X    []float64 `msgpack:"x"`
	Y    []float64 `msgpack:"y"`
	Name string    `msgpack:"name"`
	Head bool      `msgpack:"head"`
	Tail bool      `msgpack:"tail"`
}

type waveformDoc struct {
	Name  string    `msgpack:"name"`
	Waves []waveDoc `msgpack:"waves"`
}

type channelDoc struct {
	Name      string        `msgpack:"name"`
	WireNames []string      `msgpack:"wire_names"`
	Wires     []waveformDoc `msgpack:"wires"`
}

type gateDoc struct {
	ID       string       `msgpack:"id"`
	Name     string       `msgpack:"name"`
	Channels []channelDoc `msgpack:"channels"`
}

type cellDoc struct {
	Row     int        `msgpack:"row"`
	Time    int        `msgpack:"time"`
	Label   string     `msgpack:"label"`
	Channel channelDoc `msgpack:"channel"`
}

type circuitDoc struct {
	Name      string         `msgpack:"name"`
	Slots     int            `msgpack:"slots"`
	Qubits    map[string]int `msgpack:"qubits"`
	Auxiliary map[string]int `msgpack:"auxiliary"`
	Cells     []cellDoc      `msgpack:"cells"`
	Compiled  bool           `msgpack:"compiled"`
}

// document is the payload of every kind: a precision plus exactly one body.
type document struct {
	Precision precisionDoc `msgpack:"precision"`
	Wave      *waveDoc     `msgpack:"wave,omitempty"`
	Waveform  *waveformDoc `msgpack:"waveform,omitempty"`
	Channel   *channelDoc  `msgpack:"channel,omitempty"`
	Gate      *gateDoc     `msgpack:"gate,omitempty"`
	Circuit   *circuitDoc  `msgpack:"circuit,omitempty"`
}

// -----------------------------------------------------------------------------
// Encoding
// -----------------------------------------------------------------------------

// KindOf returns the kind of obj and its name.
func KindOf(obj interface{}) (Kind, string, error) {
	switch v := obj.(type) {
	case *wave.Wave:
		return KindWave, v.Name(), nil
	case *wave.Waveform:
		return KindWaveform, v.Name(), nil
	case *wave.QubitChannel:
		return KindChannel, v.Name(), nil
	case *circuit.Gate:
		return KindGate, v.Name(), nil
	case *circuit.Circuit:
		return KindCircuit, v.Name(), nil
	default:
		return "", "", fmt.Errorf("%T: %w", obj, ErrUnknownKind)
	}
}

// Encode writes obj to w. name, when not empty, replaces the object's own
// name in the stored document.
func Encode(w io.Writer, obj interface{}, name string) error {
	kind, _, err := KindOf(obj)
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	var doc document
	switch v := obj.(type) {
	case *wave.Wave:
		d := waveToDoc(v)
		doc.Precision, doc.Wave = precToDoc(v.Precision()), &d
		if name != "" {
			doc.Wave.Name = name
		}
	case *wave.Waveform:
		d := waveformToDoc(v)
		doc.Precision, doc.Waveform = precToDoc(v.Precision()), &d
		if name != "" {
			doc.Waveform.Name = name
		}
	case *wave.QubitChannel:
		d := channelToDoc(v)
		doc.Precision, doc.Channel = precToDoc(v.Precision()), &d
		if name != "" {
			doc.Channel.Name = name
		}
	case *circuit.Gate:
		d, prec, err := gateToDoc(v)
		if err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		doc.Precision, doc.Gate = prec, &d
		if name != "" {
			doc.Gate.Name = name
		}
	case *circuit.Circuit:
		d := circuitToDoc(v)
		doc.Precision, doc.Circuit = precToDoc(v.Precision()), &d
		if name != "" {
			doc.Circuit.Name = name
		}
	}

	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(envelope{Kind: kind, Version: Version}); err != nil {
		return fmt.Errorf("Encode: envelope: %w", err)
	}
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("Encode: %s: %w", kind, err)
	}

	return nil
}

func precToDoc(p axis.Precision) precisionDoc {
	return precisionDoc{TimeDigits: p.TimeDigits, FreqDigits: p.FreqDigits}
}

func waveToDoc(w *wave.Wave) waveDoc {
	r := w.Rule()
	return waveDoc{X: w.X(), Y: w.Y(), Name: w.Name(), Head: r.Head, Tail: r.Tail}
}

func waveformToDoc(wf *wave.Waveform) waveformDoc {
	ws := wf.Waves()
	d := waveformDoc{Name: wf.Name(), Waves: make([]waveDoc, len(ws))}
	for i, w := range ws {
		d.Waves[i] = waveToDoc(w)
	}

	return d
}

func channelToDoc(qc *wave.QubitChannel) channelDoc {
	wires := qc.Wires()
	d := channelDoc{Name: qc.Name(), WireNames: qc.WireNames(), Wires: make([]waveformDoc, len(wires))}
	for i, wf := range wires {
		d.Wires[i] = waveformToDoc(wf)
	}

	return d
}

func gateToDoc(g *circuit.Gate) (gateDoc, precisionDoc, error) {
	names := g.Channels()
	d := gateDoc{ID: g.ID().String(), Name: g.Name(), Channels: make([]channelDoc, len(names))}
	var prec precisionDoc
	for i, name := range names {
		ch, err := g.Channel(name)
		if err != nil {
			return gateDoc{}, precisionDoc{}, err
		}
		if i == 0 {
			prec = precToDoc(ch.Precision())
		}
		d.Channels[i] = channelToDoc(ch)
	}

	return d, prec, nil
}

func circuitToDoc(c *circuit.Circuit) circuitDoc {
	cells := c.Cells()
	d := circuitDoc{
		Name:      c.Name(),
		Slots:     c.Slots(),
		Qubits:    c.Qubits(),
		Auxiliary: c.Auxiliary(),
		Cells:     make([]cellDoc, len(cells)),
		Compiled:  c.IsCompiled(),
	}
	for i, cl := range cells {
		d.Cells[i] = cellDoc{Row: cl.Row, Time: cl.Time, Label: cl.Label, Channel: channelToDoc(cl.Channel)}
	}

	return d
}

// -----------------------------------------------------------------------------
// Decoding
// -----------------------------------------------------------------------------

// Decode reads one object from r and returns it with its kind.
func Decode(r io.Reader) (interface{}, Kind, error) {
	dec := msgpack.NewDecoder(r)
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, "", fmt.Errorf("Decode: envelope: %w", err)
	}
	if env.Version != Version {
		return nil, env.Kind, fmt.Errorf("Decode: version %d: %w", env.Version, ErrVersion)
	}
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, env.Kind, fmt.Errorf("Decode: %s: %w", env.Kind, err)
	}
	obj, err := fromDoc(env.Kind, &doc)
	if err != nil {
		return nil, env.Kind, fmt.Errorf("Decode: %s: %w", env.Kind, err)
	}

	return obj, env.Kind, nil
}

func fromDoc(kind Kind, doc *document) (interface{}, error) {
	prec := axis.Precision{TimeDigits: doc.Precision.TimeDigits, FreqDigits: doc.Precision.FreqDigits}
	if !prec.Valid() {
		return nil, fmt.Errorf("precision %+v: %w", prec, ErrCorrupt)
	}
	opt := wave.WithPrecision(prec)
	missing := fmt.Errorf("no %s body: %w", kind, ErrCorrupt)

	switch kind {
	case KindWave:
		if doc.Wave == nil {
			return nil, missing
		}
		return docToWave(*doc.Wave, opt)
	case KindWaveform:
		if doc.Waveform == nil {
			return nil, missing
		}
		return docToWaveform(*doc.Waveform, opt)
	case KindChannel:
		if doc.Channel == nil {
			return nil, missing
		}
		return docToChannel(*doc.Channel, opt)
	case KindGate:
		if doc.Gate == nil {
			return nil, missing
		}
		return docToGate(*doc.Gate, opt)
	case KindCircuit:
		if doc.Circuit == nil {
			return nil, missing
		}
		return docToCircuit(*doc.Circuit, prec, opt)
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}

func docToWave(d waveDoc, opt wave.Option) (*wave.Wave, error) {
	return wave.New(d.X, d.Y, d.Name, wave.AppendRule{Head: d.Head, Tail: d.Tail}, opt)
}

func docToWaveform(d waveformDoc, opt wave.Option) (*wave.Waveform, error) {
	ws := make([]*wave.Wave, len(d.Waves))
	for i, wd := range d.Waves {
		w, err := docToWave(wd, opt)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		ws[i] = w
	}

	return wave.NewWaveform(ws, d.Name, opt)
}

func docToChannel(d channelDoc, opt wave.Option) (*wave.QubitChannel, error) {
	wires := make([]*wave.Waveform, len(d.Wires))
	for i, wd := range d.Wires {
		wf, err := docToWaveform(wd, opt)
		if err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
		wires[i] = wf
	}
	qc, err := wave.NewQubitChannel(wires...)
	if err != nil {
		return nil, err
	}
	qc.SetWireNames(d.WireNames...)
	qc.SetName(d.Name)

	return qc, nil
}

func docToGate(d gateDoc, opt wave.Option) (*circuit.Gate, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("gate id: %w", err)
	}
	chs := make([]*wave.QubitChannel, len(d.Channels))
	for i, cd := range d.Channels {
		qc, err := docToChannel(cd, opt)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		chs[i] = qc
	}

	return circuit.NewGateWithID(id, d.Name, chs...)
}

func docToCircuit(d circuitDoc, prec axis.Precision, opt wave.Option) (*circuit.Circuit, error) {
	c, err := circuit.NewIndexed(d.Qubits, d.Slots, d.Auxiliary,
		circuit.WithName(d.Name), circuit.WithPrecision(prec))
	if err != nil {
		return nil, err
	}
	for i, cd := range d.Cells {
		qc, err := docToChannel(cd.Channel, opt)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if err := c.Place(qc, circuit.Position{Row: cd.Row, Time: cd.Time}, cd.Label); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
	}
	if d.Compiled {
		if err := c.Compile(); err != nil {
			return nil, err
		}
	}

	return c, nil
}
