package handler

import (
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
)

func aClienteResponse(c *model.Cliente) dto.ClienteResponse {
	resp := dto.ClienteResponse{
		ID:            c.ID.String(),
		NombreCliente: c.NombreCliente,
		Cedula:        c.Cedula,
		Correo:        c.Correo,
		Telefono:      c.Telefono,
		Direccion:     c.Direccion,
	}
	for i := range c.MotosCliente {
		resp.MotosCliente = append(resp.MotosCliente, aMotoClienteResponse(&c.MotosCliente[i]))
	}
	return resp
}

func aMotoClienteResponse(m *model.MotoCliente) dto.MotoClienteResponse {
	resp := dto.MotoClienteResponse{
		ID:        m.ID.String(),
		Placa:     m.Placa,
		Marca:     m.Marca,
		Modelo:    m.Modelo,
		Anio:      m.Anio,
		ClienteID: m.ClienteID.String(),
	}
	if m.Cliente != nil {
		cliente := aClienteResponse(m.Cliente)
		resp.Cliente = &cliente
	}
	return resp
}

func aMotoMercadoResponse(m *model.MotoMercado) dto.MotoMercadoResponse {
	return dto.MotoMercadoResponse{ID: m.ID.String(), Modelo: m.Modelo}
}

func aMarcaResponse(m *model.Marca) dto.MarcaResponse {
	return dto.MarcaResponse{ID: m.ID.String(), NombreMarca: m.NombreMarca}
}

func aServicioResponse(s *model.Servicio) dto.ServicioResponse {
	return dto.ServicioResponse{
		ID:             s.ID.String(),
		NombreServicio: s.NombreServicio,
		Precio:         s.Precio,
	}
}

func aProveedorResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:              p.ID.String(),
		NombreProveedor: p.NombreProveedor,
		Nit:             p.Nit,
		Telefono:        p.Telefono,
		Asesor:          p.Asesor,
	}
}

func aRepuestoResponse(r *model.Repuesto) dto.RepuestoResponse {
	resp := dto.RepuestoResponse{
		ID:             r.ID.String(),
		CodigoBarras:   r.CodigoBarras,
		NombreRepuesto: r.NombreRepuesto,
		ValorCompra:    r.ValorCompra,
		ValorUnitario:  r.ValorUnitario,
		Ubicacion:      r.Ubicacion,
		Stock:          r.Stock,
	}
	if r.Marca != nil {
		marca := aMarcaResponse(r.Marca)
		resp.Marca = &marca
	}
	for i := range r.MotosMercado {
		resp.MotosMercado = append(resp.MotosMercado, aMotoMercadoResponse(&r.MotosMercado[i]))
	}
	for i := range r.Proveedores {
		resp.Proveedores = append(resp.Proveedores, aProveedorResponse(&r.Proveedores[i]))
	}
	return resp
}

func aFacturaResponse(f *model.Factura) dto.FacturaResponse {
	resp := dto.FacturaResponse{
		ID:                f.ID.String(),
		Fecha:             f.Fecha,
		PagoEfectivo:      f.PagoEfectivo,
		PagoTarjeta:       f.PagoTarjeta,
		PagoTransferencia: f.PagoTransferencia,
		Descuento:         f.Descuento,
		Subtotal:          f.Subtotal,
		IVA:               f.IVA,
		Total:             f.Total,
		Vendedor:          f.Vendedor,
		ClienteID:         f.ClienteID.String(),
	}
	if f.Cliente != nil {
		cliente := aClienteResponse(f.Cliente)
		resp.Cliente = &cliente
	}
	if f.OrdenServicioID != nil {
		s := f.OrdenServicioID.String()
		resp.OrdenServicioID = &s
	}
	if f.VentaDirectaID != nil {
		s := f.VentaDirectaID.String()
		resp.VentaDirectaID = &s
	}
	return resp
}

func aOrdenResponse(o *model.OrdenServicio) dto.OrdenResponse {
	resp := dto.OrdenResponse{
		ID:                    o.ID.String(),
		Fecha:                 o.Fecha,
		Estado:                string(o.Estado),
		Subtotal:              o.Subtotal,
		Descuento:             o.Descuento,
		IVA:                   o.IVA,
		Total:                 o.Total,
		AdelantoEfectivo:      o.AdelantoEfectivo,
		AdelantoTarjeta:       o.AdelantoTarjeta,
		AdelantoTransferencia: o.AdelantoTransferencia,
		GuardarCascos:         o.GuardarCascos,
		GuardarPapeles:        o.GuardarPapeles,
		Observaciones:         o.Observaciones,
		ObservacionesMecanico: o.ObservacionesMecanico,
		ObservacionesFactura:  o.ObservacionesFactura,
		Mecanico:              o.Mecanico,
		Vendedor:              o.Vendedor,
		Repuestos:             []dto.LineaRepuestoResponse{},
		Servicios:             []dto.LineaServicioResponse{},
	}
	if o.MotoCliente != nil {
		moto := aMotoClienteResponse(o.MotoCliente)
		resp.MotoCliente = &moto
	}
	for _, l := range o.Repuestos {
		linea := dto.LineaRepuestoResponse{
			RepuestoID: l.RepuestoID.String(),
			Cantidad:   l.Cantidad,
			Precio:     l.Precio,
		}
		if l.Repuesto != nil {
			linea.NombreRepuesto = l.Repuesto.NombreRepuesto
		}
		resp.Repuestos = append(resp.Repuestos, linea)
	}
	for _, l := range o.Servicios {
		linea := dto.LineaServicioResponse{
			ServicioID: l.ServicioID.String(),
			Precio:     l.Precio,
		}
		if l.Servicio != nil {
			linea.NombreServicio = l.Servicio.NombreServicio
		}
		resp.Servicios = append(resp.Servicios, linea)
	}
	if o.Factura != nil {
		factura := aFacturaResponse(o.Factura)
		resp.Factura = &factura
	}
	return resp
}

func aVentaResponse(v *model.VentaDirecta) dto.VentaResponse {
	resp := dto.VentaResponse{
		ID:                v.ID.String(),
		Fecha:             v.Fecha,
		Subtotal:          v.Subtotal,
		Descuento:         v.Descuento,
		IVA:               v.IVA,
		Total:             v.Total,
		PagoEfectivo:      v.PagoEfectivo,
		PagoTarjeta:       v.PagoTarjeta,
		PagoTransferencia: v.PagoTransferencia,
		Vendedor:          v.Vendedor,
		Repuestos:         []dto.LineaRepuestoResponse{},
	}
	if v.Cliente != nil {
		cliente := aClienteResponse(v.Cliente)
		resp.Cliente = &cliente
	}
	for _, l := range v.Repuestos {
		linea := dto.LineaRepuestoResponse{
			RepuestoID: l.RepuestoID.String(),
			Cantidad:   l.Cantidad,
			Precio:     l.Precio,
		}
		if l.Repuesto != nil {
			linea.NombreRepuesto = l.Repuesto.NombreRepuesto
		}
		resp.Repuestos = append(resp.Repuestos, linea)
	}
	if v.Factura != nil {
		factura := aFacturaResponse(v.Factura)
		resp.Factura = &factura
	}
	return resp
}

func aUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:     u.ID.String(),
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
		Activo: u.Activo,
	}
}
