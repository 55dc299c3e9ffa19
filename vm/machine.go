package vm

import (
	"fmt"
	"io"
)

// TapeSize is the fixed number of cells on the tape. The data pointer
// wraps modulo this value.
const TapeSize = 65536

// Machine holds the tape, data pointer, and compiled program for a
// single run.
type Machine struct {
	Code []Instruction

	Tape [TapeSize]byte
	Ptr  uint16

	In  io.Reader
	Out io.Writer

	ip int
}

// New creates a Machine ready to run code, reading from in and writing to out.
func New(code []Instruction, in io.Reader, out io.Writer) *Machine {
	return &Machine{
		Code: code,
		In:   in,
		Out:  out,
	}
}

// Run executes the program from the first instruction until END or a
// runtime error.
func (m *Machine) Run() error {
	m.ip = 0

	for {
		in := m.Code[m.ip]

		switch in.Op {
		case ADD:
			p := m.cell(in.Offset)
			m.Tape[p] += byte(in.Data)
		case SUB:
			p := m.cell(in.Offset)
			m.Tape[p] -= byte(in.Data)
		case ADDPTR:
			m.Ptr += uint16(in.Data)
		case SUBPTR:
			m.Ptr -= uint16(in.Data)
		case PUTCH:
			if err := m.putch(in); err != nil {
				return fmt.Errorf("vm: write at ip %d: %w", m.ip, err)
			}
		case GETCH:
			m.getch(in)
		case CJUMP:
			if m.Tape[m.Ptr] == 0 {
				m.ip = in.Data
			}
		case JUMP:
			m.ip = in.Data - 1
		case CLEAR:
			m.Tape[m.Ptr] = 0
		case DCLEAR:
			if !m.dclear(in.Data) {
				return ErrNonTerminatingLoop
			}
		case MUL:
			p := m.cell(in.Offset)
			m.Tape[p] += m.Tape[m.Ptr] * byte(in.Data)
		case END:
			return nil
		default:
			return fmt.Errorf("vm: unhandled opcode %v at ip %d", in.Op, m.ip)
		}

		m.ip++
	}
}

// cell returns the wrapped tape index offset cells from Ptr.
func (m *Machine) cell(offset int) uint16 {
	return uint16(int32(m.Ptr) + int32(offset))
}

func (m *Machine) putch(in Instruction) error {
	b := m.Tape[m.cell(in.Offset)]
	buf := []byte{b}
	for i := 0; i < in.Data; i++ {
		if _, err := m.Out.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) getch(in Instruction) {
	p := m.cell(in.Offset)
	var buf [1]byte
	for i := 0; i < in.Data; i++ {
		n, err := m.In.Read(buf[:])
		if n == 0 || err != nil {
			m.Tape[p] = 0
			continue
		}
		m.Tape[p] = buf[0]
	}
}

// dclear implements the DCLEAR parity trap: it reports whether the
// cell may be safely cleared.
func (m *Machine) dclear(data int) bool {
	if data%3 == 0 {
		m.Tape[m.Ptr] = 0
		return true
	}
	if data%2 == 0 && m.Tape[m.Ptr]%2 == 0 {
		m.Tape[m.Ptr] = 0
		return true
	}
	return false
}
