package core

import "fmt"

// Vehicle is a make and model year.
type Vehicle struct {
	Make string
	Year int
}

// NewVehicle creates a Vehicle.
func NewVehicle(manufacturer string, year int) Vehicle {
	return Vehicle{Make: manufacturer, Year: year}
}

// Info describes the vehicle as "Make: <make>, Year: <year>".
func (v Vehicle) Info() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.Make, v.Year)
}

// Car is a Vehicle with a model. Info is promoted unchanged from Vehicle.
type Car struct {
	Vehicle

	Model string
}

// NewCar creates a Car.
func NewCar(manufacturer string, year int, model string) Car {
	return Car{Vehicle: NewVehicle(manufacturer, year), Model: model}
}

// ModelInfo describes the car's model as "Model: <model>".
func (c Car) ModelInfo() string {
	return "Model: " + c.Model
}
