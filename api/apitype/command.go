package apitype

import "fmt"

// Command is an already decoded operator action.
type Command interface {
	fmt.Stringer
}

type ClassifyCommand struct {
	CategoryId CategoryId
}

type UndoCommand struct {
}

type TransformCommand struct {
	Transform Transform
}

type QuitCommand struct {
}

func Classify(id CategoryId) Command {
	return &ClassifyCommand{CategoryId: id}
}

func Undo() Command {
	return &UndoCommand{}
}

func RotateLeft() Command {
	return &TransformCommand{Transform: ROTATE_LEFT}
}

func RotateRight() Command {
	return &TransformCommand{Transform: ROTATE_RIGHT}
}

func FlipHorizontal() Command {
	return &TransformCommand{Transform: FLIP_HORIZONTAL}
}

func FlipVertical() Command {
	return &TransformCommand{Transform: FLIP_VERTICAL}
}

func Quit() Command {
	return &QuitCommand{}
}

func (s *ClassifyCommand) String() string {
	return fmt.Sprintf("ClassifyCommand{%d}", s.CategoryId)
}

func (s *UndoCommand) String() string {
	return "UndoCommand"
}

func (s *TransformCommand) String() string {
	return fmt.Sprintf("TransformCommand{%s}", s.Transform)
}

func (s *QuitCommand) String() string {
	return "QuitCommand"
}
