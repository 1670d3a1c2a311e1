package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
)

// gpuTexture is the device-side copy of a texture handle together with the
// sampler built from its wrap modes.
type gpuTexture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler

	colorSpace texture.ColorSpace
	wrapS      texture.WrapMode
	wrapT      texture.WrapMode
}

func (g *gpuTexture) release() {
	if g.sampler != nil {
		g.sampler.Release()
	}
	if g.view != nil {
		g.view.Release()
	}
	if g.texture != nil {
		g.texture.Release()
	}
}

// shadowMap is one depth-only render target, one per shadow record.
type shadowMap struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	size    uint32
}

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode // defaults to PresentModeImmediate (Uncapped)
	sampleCount MSAASampleCount  // MSAA sample count for the main render pass

	cameraBuffer       *wgpu.Buffer
	lightBuffer        *wgpu.Buffer
	shadowBuffer       *wgpu.Buffer
	materialBuffer     *wgpu.Buffer
	materialBufferSize uint64

	textures      map[texture.Texture]*gpuTexture
	shadowMaps    []shadowMap
	shadowSampler *wgpu.Sampler
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

const (
	cameraBufferSize = 96
	lightBufferSize  = 16 + light.MaxGPULights*64
	shadowBufferSize = light.MaxGPULights * 6 * 80
	materialSize     = 48
)

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) (*wgpuRendererBackendImpl, error) {
	if surfaceDescriptor == nil {
		return nil, ErrNoSurface
	}
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
		sampleCount: sampleCount,
		textures:    make(map[texture.Texture]*gpuTexture),
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	w.device = d
	w.queue = d.GetQueue()

	if err := w.createFrameBuffers(); err != nil {
		w.Release()
		return nil, err
	}

	w.shadowSampler, err = w.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Shadow Comparison Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		Compare:       wgpu.CompareFunctionLess,
		MaxAnisotropy: 1,
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("failed to create comparison sampler: %w", err)
	}

	return w, nil
}

// createFrameBuffers allocates the fixed-size per-frame buffers.
func (b *wgpuRendererBackendImpl) createFrameBuffers() error {
	var err error
	b.cameraBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  cameraBufferSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create camera buffer: %w", err)
	}
	b.lightBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Light Storage Buffer",
		Size:  lightBufferSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create light buffer: %w", err)
	}
	b.shadowBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Shadow Storage Buffer",
		Size:  shadowBufferSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create shadow buffer: %w", err)
	}
	return nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		return errors.New("surface reports no supported formats")
	}
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseTargets()

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// The pass draws into the MSAA texture; the swapchain view is the
		// resolve target.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        *b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("failed to create msaa texture: %w", err)
		}
		b.msaaTexture = msaaTexture
		b.msaaTextureView, err = msaaTexture.CreateView(nil)
		if err != nil {
			return fmt.Errorf("failed to create msaa view: %w", err)
		}
	}

	// Depth texture sample count must match the color attachment.
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("failed to create depth texture: %w", err)
	}
	b.depthTexture = depthTexture
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("failed to create depth view: %w", err)
	}

	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    b.msaaTextureView, // nil when MSAA is off; set per frame
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: storeOp,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
	return nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

func (b *wgpuRendererBackendImpl) SubmitFrame(f *Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.renderPassDescriptor == nil {
		return errors.New("surface not configured")
	}

	if err := b.syncTextures(f.Textures); err != nil {
		return err
	}
	if err := b.syncShadowMaps(f.Shadows); err != nil {
		return err
	}
	if err := b.writeFrameBuffers(f); err != nil {
		return err
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("failed to acquire surface texture: %w", err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("failed to create surface view: %w", err)
	}
	defer view.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("failed to create command encoder: %w", err)
	}
	defer encoder.Release()

	for i := range f.Shadows {
		pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
			DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
				View:            b.shadowMaps[i].view,
				DepthLoadOp:     wgpu.LoadOpClear,
				DepthStoreOp:    wgpu.StoreOpStore, // sampled by the lit pass
				DepthClearValue: 1.0,
			},
		})
		pass.End()
		pass.Release()
	}

	color := &b.renderPassDescriptor.ColorAttachments[0]
	if b.sampleCount > 1 {
		color.ResolveTarget = view
	} else {
		color.View = view
	}
	color.ClearValue = wgpu.Color{R: f.ClearColor[0], G: f.ClearColor[1], B: f.ClearColor[2], A: f.ClearColor[3]}

	pass := encoder.BeginRenderPass(b.renderPassDescriptor)
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("failed to finish command encoder: %w", err)
	}
	defer commandBuffer.Release()

	b.queue.Submit(commandBuffer)
	b.surface.Present()
	return nil
}

// writeFrameBuffers uploads the camera, light, shadow and material data.
// Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) writeFrameBuffers(f *Frame) error {
	b.queue.WriteBuffer(b.cameraBuffer, 0, f.Camera.Marshal())
	b.queue.WriteBuffer(b.lightBuffer, 0, f.LightBuffer())
	if shadows := f.ShadowBuffer(); len(shadows) > 0 {
		if len(shadows) > shadowBufferSize {
			shadows = shadows[:shadowBufferSize]
		}
		b.queue.WriteBuffer(b.shadowBuffer, 0, shadows)
	}

	n := f.DrawCount()
	if n == 0 {
		return nil
	}
	need := uint64(n * materialSize)
	if need > b.materialBufferSize {
		size := max(b.materialBufferSize, materialSize*64)
		for size < need {
			size *= 2
		}
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Material Storage Buffer",
			Size:  size,
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("failed to grow material buffer to %d bytes: %w", size, err)
		}
		if b.materialBuffer != nil {
			b.materialBuffer.Release()
		}
		b.materialBuffer = buf
		b.materialBufferSize = size
	}

	data := make([]byte, 0, need)
	for _, group := range [][]DrawItem{f.Background, f.Opaque, f.Transparent} {
		for i := range group {
			data = append(data, group[i].Params.Marshal()...)
		}
	}
	b.queue.WriteBuffer(b.materialBuffer, 0, data)
	return nil
}

// syncTextures uploads texture handles not yet on the device and rebuilds
// samplers whose wrap modes changed. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) syncTextures(textures []texture.Texture) error {
	for _, tex := range textures {
		gt, ok := b.textures[tex]
		if ok && gt.colorSpace != tex.ColorSpace() {
			gt.release()
			delete(b.textures, tex)
			ok = false
		}
		if !ok {
			var err error
			gt, err = b.uploadTexture(tex)
			if err != nil {
				return fmt.Errorf("failed to upload texture %s: %w", tex.ID(), err)
			}
			b.textures[tex] = gt
		}

		s, t := tex.Wrap()
		if gt.sampler != nil && gt.wrapS == s && gt.wrapT == t {
			continue
		}
		samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
			Label:         tex.ID() + " Sampler",
			AddressModeU:  addressMode(s),
			AddressModeV:  addressMode(t),
			AddressModeW:  wgpu.AddressModeClampToEdge,
			MagFilter:     wgpu.FilterModeLinear,
			MinFilter:     wgpu.FilterModeLinear,
			MipmapFilter:  wgpu.MipmapFilterModeLinear,
			LodMinClamp:   0.0,
			LodMaxClamp:   32.0,
			MaxAnisotropy: 1,
		})
		if err != nil {
			return fmt.Errorf("failed to create sampler for %s: %w", tex.ID(), err)
		}
		if gt.sampler != nil {
			gt.sampler.Release()
		}
		gt.sampler, gt.wrapS, gt.wrapT = samp, s, t
	}
	return nil
}

// uploadTexture creates a device texture from a decoded handle.
// Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) uploadTexture(tex texture.Texture) (*gpuTexture, error) {
	width, height := uint32(tex.Width()), uint32(tex.Height())
	format := wgpu.TextureFormatRGBA8Unorm
	if tex.ColorSpace() == texture.ColorSpaceSRGB {
		format = wgpu.TextureFormatRGBA8UnormSrgb
	}

	t, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     tex.ID() + " Texture",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        format,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  t,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		tex.Pixels(),
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  width * 4,
			RowsPerImage: height,
		},
		&wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := t.CreateView(nil)
	if err != nil {
		t.Release()
		return nil, err
	}
	return &gpuTexture{texture: t, view: view, colorSpace: tex.ColorSpace()}, nil
}

// syncShadowMaps makes sure there is one depth target per shadow record at
// the record's resolution. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) syncShadowMaps(shadows []light.GPUShadowData) error {
	for i, sd := range shadows {
		size := uint32(1)
		if sd.TexelSize[0] > 0 {
			size = uint32(1/sd.TexelSize[0] + 0.5)
		}
		if i < len(b.shadowMaps) && b.shadowMaps[i].size == size {
			continue
		}

		t, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: fmt.Sprintf("Shadow Depth Texture %d", i),
			Size: wgpu.Extent3D{
				Width:              size,
				Height:             size,
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     wgpu.TextureDimension2D,
			Format:        wgpu.TextureFormatDepth32Float,
			Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
		})
		if err != nil {
			return fmt.Errorf("failed to create shadow depth texture: %w", err)
		}
		view, err := t.CreateView(nil)
		if err != nil {
			t.Release()
			return fmt.Errorf("failed to create shadow depth texture view: %w", err)
		}

		sm := shadowMap{texture: t, view: view, size: size}
		if i < len(b.shadowMaps) {
			b.shadowMaps[i].view.Release()
			b.shadowMaps[i].texture.Release()
			b.shadowMaps[i] = sm
		} else {
			b.shadowMaps = append(b.shadowMaps, sm)
		}
	}
	return nil
}

// releaseTargets frees the size-dependent attachments. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) releaseTargets() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
	b.renderPassDescriptor = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseTargets()
	for tex, gt := range b.textures {
		gt.release()
		delete(b.textures, tex)
	}
	for _, sm := range b.shadowMaps {
		sm.view.Release()
		sm.texture.Release()
	}
	b.shadowMaps = nil

	for _, buf := range []*wgpu.Buffer{b.cameraBuffer, b.lightBuffer, b.shadowBuffer, b.materialBuffer} {
		if buf != nil {
			buf.Release()
		}
	}
	b.cameraBuffer, b.lightBuffer, b.shadowBuffer, b.materialBuffer = nil, nil, nil, nil

	if b.shadowSampler != nil {
		b.shadowSampler.Release()
		b.shadowSampler = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// addressMode maps a texture wrap mode onto a sampler address mode.
func addressMode(w texture.WrapMode) wgpu.AddressMode {
	switch w {
	case texture.WrapRepeat:
		return wgpu.AddressModeRepeat
	case texture.WrapMirroredRepeat:
		return wgpu.AddressModeMirrorRepeat
	default:
		return wgpu.AddressModeClampToEdge
	}
}
