package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"pipeflow/calculator"
	"pipeflow/export"
	"pipeflow/model"
)

// Hub serves one connection. It owns the fluids entered by that peer and
// nothing is shared between connections. Results are never cached: calculate
// and export both run the pipeline on the current fluids and orientation.
type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn
	root string

	fluids []model.Fluid

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

// calculated 消息内容
type Result struct {
	Orientation model.Orientation        `json:"orientation"`
	Gravity     float64                  `json:"gravity"`
	Lengths     []float64                `json:"lengths"`
	Results     []calculator.FluidSeries `json:"results"`
	Rejected    []calculator.Rejection   `json:"rejected"`
}

func NewHub(conn *websocket.Conn, c calculator.Calculator, root string) *Hub {
	return &Hub{
		c:      c,
		conn:   conn,
		root:   root,
		fluids: calculator.DefaultFluids(),
		msg:    make(chan model.Msg, 10),
		reply:  make(chan model.Msg, 10),
		done:   make(chan struct{}),
	}
}

// Run reads requests until the peer goes away.
func (h *Hub) Run() {
	go h.handleRequest()
	go h.handleResponse()
	defer close(h.done)
	for {
		var msg model.Msg
		if err := h.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("err: ", err)
			}
			return
		}
		h.msg <- msg
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.Println("err: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply, err := h.handle(msg)
			if err != nil {
				log.WithField("type", msg.Type).Warn(err)
				reply = model.Msg{Type: model.MsgError, Content: err.Error()}
			}
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handle(msg model.Msg) (model.Msg, error) {
	switch msg.Type {
	case model.MsgEnv:
		o, err := model.ParseOrientation(msg.Content)
		if err != nil {
			return model.Msg{}, err
		}
		h.c.SetOrientation(o)
		return jsonMsg(model.MsgEnvSet, h.c.Environment())
	case model.MsgFluids:
		var fluids []model.Fluid
		if err := json.Unmarshal([]byte(msg.Content), &fluids); err != nil {
			return model.Msg{}, fmt.Errorf("fluids: %w", err)
		}
		h.fluids = fluids
		return jsonMsg(model.MsgFluidsSet, h.fluids)
	case model.MsgUpdate:
		var u model.FluidUpdate
		if err := json.Unmarshal([]byte(msg.Content), &u); err != nil {
			return model.Msg{}, fmt.Errorf("update: %w", err)
		}
		f, err := h.update(u)
		if err != nil {
			return model.Msg{}, err
		}
		return jsonMsg(model.MsgUpdated, f)
	case model.MsgCalculate:
		return jsonMsg(model.MsgResult, h.calculate())
	case model.MsgExport:
		res := h.calculate()
		paths, err := export.All(h.root, res.Orientation, res.Lengths, res.Results)
		if err != nil {
			return model.Msg{}, err
		}
		return jsonMsg(model.MsgExported, paths)
	}
	return model.Msg{}, fmt.Errorf("no such type: %q", msg.Type)
}

// update replaces one property of a named fluid, adding the fluid if the
// name is new.
func (h *Hub) update(u model.FluidUpdate) (model.Fluid, error) {
	for i, f := range h.fluids {
		if f.Name != u.Name {
			continue
		}
		nf, err := f.With(u.Property, u.Value)
		if err != nil {
			return model.Fluid{}, err
		}
		h.fluids[i] = nf
		return nf, nil
	}
	nf, err := model.Fluid{Name: u.Name}.With(u.Property, u.Value)
	if err != nil {
		return model.Fluid{}, err
	}
	h.fluids = append(h.fluids, nf)
	return nf, nil
}

func (h *Hub) calculate() *Result {
	results, rejected := h.c.CalculateAll(h.fluids)
	env := h.c.Environment()
	return &Result{
		Orientation: env.Orientation,
		Gravity:     env.Gravity,
		Lengths:     h.c.Sweep().Lengths(),
		Results:     results,
		Rejected:    rejected,
	}
}

func jsonMsg(typ string, v interface{}) (model.Msg, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return model.Msg{}, err
	}
	return model.Msg{Type: typ, Content: string(data)}, nil
}
