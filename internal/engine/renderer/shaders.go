package renderer

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(transpose(inverse(uModel))) * aNormal;
	vTexCoord = aTexCoord;
	gl_Position = uProjection * uView * world;
}
`

const meshFragmentShader = `
#version 410 core

#define MAX_POINT_LIGHTS 4

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec4 uColor;
uniform float uOpacity;
uniform vec3 uAmbient;
uniform vec3 uSunDir;
uniform vec3 uSunColor;
uniform int uPointCount;
uniform vec3 uPointPos[MAX_POINT_LIGHTS];
uniform vec3 uPointColor[MAX_POINT_LIGHTS];
uniform float uPointRange[MAX_POINT_LIGHTS];
uniform vec3 uCameraPos;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}
	vec3 viewDir = normalize(uCameraPos - vWorldPos);

	vec3 light = uAmbient;
	light += uSunColor * max(dot(n, normalize(uSunDir)), 0.0);

	float specular = 0.0;
	vec3 halfDir = normalize(normalize(uSunDir) + viewDir);
	specular += pow(max(dot(n, halfDir), 0.0), 32.0) * 0.25;

	for (int i = 0; i < uPointCount; i++) {
		vec3 toLight = uPointPos[i] - vWorldPos;
		float atten = 1.0;
		if (uPointRange[i] > 0.0) {
			atten = clamp(1.0 - length(toLight) / uPointRange[i], 0.0, 1.0);
		}
		light += uPointColor[i] * max(dot(n, normalize(toLight)), 0.0) * atten;
	}

	vec3 rgb = uColor.rgb * light + vec3(specular);
	FragColor = vec4(rgb, uColor.a * uOpacity);
}
`
